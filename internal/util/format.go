package util

import (
	"strings"
	"time"
)

const (
	transactionDateLayout = "02-01-2006"
	transactionTimeLayout = "15:04:05"
)

// TransactionZone is the fixed GMT+7 zone transaction timestamps are rendered in.
var TransactionZone = time.FixedZone("GMT+7", 7*60*60)

// FormatTransactionDate formats t as DD-MM-YYYY in GMT+7.
// Ví dụ: 2024-01-01T20:00:00Z -> "02-01-2024".
func FormatTransactionDate(t time.Time) string {
	return t.In(TransactionZone).Format(transactionDateLayout)
}

// FormatTransactionTime formats t as HH:MM:SS in GMT+7.
func FormatTransactionTime(t time.Time) string {
	return t.In(TransactionZone).Format(transactionTimeLayout)
}

// MaskSecret keeps the first and last visible characters of value and hides the rest,
// so device tokens can be correlated in logs without being recoverable.
func MaskSecret(value string, visible int) string {
	if visible <= 0 || len(value) <= visible*2 {
		return strings.Repeat("*", len(value))
	}
	return value[:visible] + "..." + value[len(value)-visible:]
}
