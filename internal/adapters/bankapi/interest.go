package bankapi

import (
	"context"
	"net/url"
	"sort"
	"strconv"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (c *Client) ApplyInterest(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var applied decimal.Decimal
	if err := c.post(ctx, "/interest/accounts/"+pathID(accountID)+"/apply", nil, nil, &applied); err != nil {
		return decimal.Zero, err
	}
	return applied, nil
}

func (c *Client) ApplyInterestToAll(ctx context.Context) error {
	return c.post(ctx, "/interest/apply-all", nil, nil, nil)
}

func (c *Client) ChangeStrategy(ctx context.Context, accountID int64, strategyName string) error {
	body := map[string]string{"strategyName": strategyName}
	return c.post(ctx, "/interest/accounts/"+pathID(accountID)+"/change-strategy", nil, body, nil)
}

func (c *Client) InterestReport(ctx context.Context, accountID int64) (*domain.InterestReport, error) {
	var report domain.InterestReport
	if err := c.get(ctx, "/interest/accounts/"+pathID(accountID)+"/report", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) FutureInterest(ctx context.Context, accountID int64, months int) (decimal.Decimal, error) {
	var interest decimal.Decimal
	if err := c.get(ctx, "/interest/accounts/"+pathID(accountID)+"/future/"+strconv.Itoa(months), nil, &interest); err != nil {
		return decimal.Zero, err
	}
	return interest, nil
}

// strategyList flattens the strategy map the server returns, keyed by the
// name used to select a strategy, into a list sorted by key.
func strategyList(byKey map[string]domain.InterestStrategy) []domain.InterestStrategy {
	out := make([]domain.InterestStrategy, 0, len(byKey))
	for key, s := range byKey {
		s.Key = key
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (c *Client) Strategies(ctx context.Context) ([]domain.InterestStrategy, error) {
	var byKey map[string]domain.InterestStrategy
	if err := c.get(ctx, "/interest/strategies", nil, &byKey); err != nil {
		return nil, err
	}
	return strategyList(byKey), nil
}

func (c *Client) StrategiesFor(ctx context.Context, accountType domain.AccountType) ([]domain.InterestStrategy, error) {
	var byKey map[string]domain.InterestStrategy
	if err := c.get(ctx, "/interest/strategies/"+string(accountType), nil, &byKey); err != nil {
		return nil, err
	}
	return strategyList(byKey), nil
}

func (c *Client) CompareStrategies(ctx context.Context, accountID int64, strategy1, strategy2 string) (*domain.StrategyComparison, error) {
	var cmp domain.StrategyComparison
	query := url.Values{"strategy1": {strategy1}, "strategy2": {strategy2}}
	if err := c.get(ctx, "/interest/accounts/"+pathID(accountID)+"/compare", query, &cmp); err != nil {
		return nil, err
	}
	return &cmp, nil
}

func (c *Client) EffectiveRate(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var rate decimal.Decimal
	if err := c.get(ctx, "/interest/accounts/"+pathID(accountID)+"/rate", nil, &rate); err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}
