package formatting

import "fmt"

// FormatRent formats a monthly rent held in whole rupees.
func FormatRent(price int64) string {
	return fmt.Sprintf("₹%d / month", price)
}

// FormatAmount formats a checkout amount held in paise, the smallest
// currency unit the gateway works in.
func FormatAmount(amountInPaise int64, currency string) string {
	if currency == "" || currency == "INR" {
		if amountInPaise%100 == 0 {
			return fmt.Sprintf("₹%d", amountInPaise/100)
		}
		return fmt.Sprintf("₹%.2f", float64(amountInPaise)/100)
	}
	return fmt.Sprintf("%.2f %s", float64(amountInPaise)/100, currency)
}
