package models

// BusinessInsights is the payload returned by the AI insights
// collaborator: three short strategic notes about the shop. When the
// collaborator is disabled or fails, placeholder text is returned
// instead; callers never see an error.
type BusinessInsights struct {
	StockAlert   string `json:"stock_alert"`
	SalesInsight string `json:"sales_insight"`
	ActionTip    string `json:"action_tip"`
}
