package utils

import "math"

// CeilUnits округляет сумму вверх до целой денежной единицы
func CeilUnits(value float64) int64 {
	return int64(math.Ceil(value))
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FitsInt64 проверяет, что округленное вверх значение помещается в int64
func FitsInt64(value float64) bool {
	return IsFinite(value) && math.Ceil(value) < math.MaxInt64 && math.Ceil(value) >= math.MinInt64
}
