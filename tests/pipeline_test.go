package tests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropkit/pkg/ext"
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/rop/chain"
	"github.com/ib-77/ropkit/pkg/rop/solo"
	"github.com/ib-77/ropkit/pkg/validate"
)

type instrument struct {
	id       uuid.UUID
	symbol   string
	tickSize decimal.Decimal
}

type registry struct {
	bySymbol map[string]instrument
}

func newRegistry(symbols ...string) *registry {
	r := &registry{bySymbol: map[string]instrument{}}
	for i, s := range symbols {
		r.bySymbol[s] = instrument{id: uuid.New(), symbol: s, tickSize: ext.ToTickSize(i + 1)}
	}
	return r
}

func (r *registry) find(symbol string) rop.Option[instrument] {
	if inst, ok := r.bySymbol[symbol]; ok {
		return rop.Some(inst)
	}
	return rop.None[instrument]()
}

func (r *registry) add(symbol string) rop.Command {
	if err := validate.DictionaryDoesNotContainKey(symbol, "symbol", r.bySymbol); err != nil {
		return rop.Fail(fmt.Sprintf("%s already registered", symbol))
	}
	r.bySymbol[symbol] = instrument{id: uuid.New(), symbol: symbol, tickSize: ext.ToTickSize(2)}
	return rop.Ok()
}

func quote(r *registry, symbol string, price string) rop.Query[string] {
	return chain.Finally(
		chain.Map(
			chain.ThenTry(
				chain.Start(solo.ToQuery(r.find(symbol), fmt.Sprintf("%s not found", symbol))),
				func(inst instrument) (decimal.Decimal, error) {
					p, err := decimal.NewFromString(price)
					if err != nil {
						return decimal.Zero, err
					}
					return p.Round(int32(ext.DecimalPlaces(inst.tickSize))), nil
				}).
				Ensure(func(p decimal.Decimal) bool { return p.IsPositive() }, "price must be positive"),
			func(p decimal.Decimal) string { return symbol + "=" + p.String() }),
		rop.Success[string],
		rop.Failure[string],
	)
}

func TestQuotePipeline(t *testing.T) {
	r := newRegistry("AUDUSD", "USDJPY")

	ok := quote(r, "AUDUSD", "0.6543")
	require.True(t, ok.IsSuccess(), ok.String())
	assert.Equal(t, "AUDUSD=0.7", ok.Value())

	missing := quote(r, "EURUSD", "1.1")
	assert.Equal(t, "EURUSD not found", missing.ErrMsg())

	negative := quote(r, "USDJPY", "-150")
	assert.Equal(t, "price must be positive", negative.ErrMsg())

	garbage := quote(r, "USDJPY", "abc")
	assert.True(t, garbage.IsFailure())
	assert.True(t, strings.Contains(garbage.ErrMsg(), "abc"), garbage.ErrMsg())
}

func TestRegistrationCombine(t *testing.T) {
	r := newRegistry("AUDUSD")

	res := rop.Combine(r.add("EURUSD"), r.add("AUDUSD"), r.add("EURUSD"))
	assert.Equal(t, "AUDUSD already registered; EURUSD already registered", res.ErrMsg())

	first := rop.FirstFailureOrSuccess(r.add("GBPUSD"), r.add("AUDUSD"), r.add("GBPUSD"))
	assert.Equal(t, "AUDUSD already registered", first.ErrMsg())

	assert.True(t, r.find("GBPUSD").HasValue())
}

func TestCommandToQueryRoundTrip(t *testing.T) {
	r := newRegistry()

	var logged []string
	res := solo.SwitchFromCommand(r.add("NZDUSD"), func() rop.Query[instrument] {
		return solo.ToQuery(r.find("NZDUSD"), "not stored")
	}).
		OnSuccess(func(inst instrument) { logged = append(logged, inst.symbol) }).
		Command().
		OnFailureMsg(func(errMsg string) { logged = append(logged, errMsg) })

	assert.True(t, res.IsSuccess())
	assert.Equal(t, []string{"NZDUSD"}, logged)

	res = solo.SwitchFromCommand(r.add("NZDUSD"), func() rop.Query[instrument] {
		return solo.ToQuery(r.find("NZDUSD"), "not stored")
	}).Command().
		OnFailureMsg(func(errMsg string) { logged = append(logged, errMsg) })

	assert.Equal(t, "Command Failure (NZDUSD already registered).", res.Message())
	assert.Equal(t, []string{"NZDUSD", "NZDUSD already registered"}, logged)
}
