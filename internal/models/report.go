package models

// RevenueSummary aggregates the orders collection for the reports view.
type RevenueSummary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	AverageOrder    float64 `json:"average_order"`
	CompletedOrders int     `json:"completed_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
}

// DishSales is one row of the top-dishes ranking, derived from the dish
// collection's display counters.
type DishSales struct {
	Name       string  `json:"name" parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Orders     int32   `json:"orders" parquet:"name=orders, type=INT32"`
	Revenue    float64 `json:"revenue" parquet:"name=revenue, type=DOUBLE"`
	Percentage float64 `json:"percentage" parquet:"name=percentage, type=DOUBLE"`
}
