package models

// GraphQL view models. Counts are int32 because graphql-go maps the
// schema Int type to int32.

type BalanceRow struct {
	SkuNum      string
	Description string
	BinCode     string
	OnHand      float64
}

type BalanceList struct {
	Rows          []*BalanceRow
	GrandTotal    float64
	TotalRowCount int32
	PageCount     int32
	Page          int32
	PageSize      int32
}

type MovementRow struct {
	MovementID     int32
	SkuNum         string
	BinCode        string
	MovementType   string
	QuantityChange float64
	Reference      string
	UserID         int32
	CreatedAt      string
	RunningBalance float64
}

type MovementDetail struct {
	Rows     []*MovementRow
	Strategy string
}

type Sku struct {
	SkuNum      string
	Description string
	Status      int32
}
