package finlens

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// A Quoter fetches the latest traded price for an asset from a public quote
// endpoint returning JSON. The value is picked out of the response with a
// JSONPath expression, so switching providers is a configuration change.
type Quoter struct {
	// BaseURL is the quote endpoint; the asset symbol is appended to it.
	BaseURL string
	// ValuePath is the JSONPath of the price in the response.
	ValuePath string

	client *http.Client
}

// NewQuoter returns a Quoter against the default quote endpoint, with a
// daily-expiring disk cache on its HTTP client.
func NewQuoter() *Quoter {
	return &Quoter{
		BaseURL:   "https://www.tradegate.de/refresh.php?isin=",
		ValuePath: "$.last",
		client:    daily(),
	}
}

// Latest returns the latest price for the given asset symbol.
func (q *Quoter) Latest(symbol string) (float64, error) {
	var jobj any
	if err := jwget(q.client, q.BaseURL+symbol, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}

	jval, err := jsonpath.Get(q.ValuePath, jobj)
	if err != nil {
		return 0, fmt.Errorf("error reading quote for %q: %q %w", symbol, q.ValuePath, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		// sometimes the API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return 0, fmt.Errorf("cannot read quote for %q: neither a float nor a string", symbol)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read quote for %q: invalid string %q: %w", symbol, sval, err)
		}
	}
	if val == 0 {
		return 0, fmt.Errorf("empty quote for %q", symbol)
	}
	return val, nil
}

// UpdateHoldings refreshes each stock holding's current value from the
// quote endpoint; holdings of other types are left untouched. Failures are
// per-holding and non-fatal: the stale value is kept and the failure
// logged. It returns how many holdings were updated.
func (q *Quoter) UpdateHoldings(holdings []Holding) (updated int) {
	for i := range holdings {
		if !strings.EqualFold(holdings[i].Type, "Stock") {
			continue
		}
		val, err := q.Latest(holdings[i].Asset)
		if err != nil {
			log.Printf("keeping stale value for %q: %v", holdings[i].Asset, err)
			continue
		}
		holdings[i].CurrentValue = val
		updated++
	}
	return updated
}
