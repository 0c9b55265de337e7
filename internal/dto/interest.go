package dto

// ChangeStrategyRequest selects a new interest strategy for an account.
type ChangeStrategyRequest struct {
	StrategyName string `json:"strategyName" binding:"required"`
}

// CompareStrategiesParams names the two strategies to compare.
type CompareStrategiesParams struct {
	Strategy1 string `form:"strategy1" binding:"required"`
	Strategy2 string `form:"strategy2" binding:"required"`
}

// FutureInterestParams is the projection horizon.
type FutureInterestParams struct {
	Months int `form:"months" binding:"required,min=1,max=600"`
}
