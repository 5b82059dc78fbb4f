package model

import "fmt"

// Statistic carries the running totals over completed purchases. Cancelling
// an order does not reverse them; revenue is gross.
type Statistic struct {
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

func (s *Statistic) RecordOrder(amount float64) {
	s.TotalOrders++
	s.TotalRevenue += amount
}

func (s Statistic) Report() string {
	return fmt.Sprintf("Total Orders: %d, Total Revenue: RM%.2f", s.TotalOrders, s.TotalRevenue)
}
