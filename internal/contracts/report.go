package contracts

type MonthlyReportQuery struct {
	Month int `form:"month" binding:"omitempty,gte=1,lte=12"`
	Year  int `form:"year" binding:"omitempty,gte=1900,lte=9999"`
}
