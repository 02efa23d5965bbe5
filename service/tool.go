package service

import (
	"strings"
)

// 统计计算通用函数
func calculateStats(data []float64) Parameter {
	var sum, sumSquares float64
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		sum += v
		sumSquares += v * v
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	n := float64(len(data))
	mean := sum / n
	variance := (sumSquares / n) - (mean * mean)

	return Parameter{
		Min:      minVal,
		Max:      maxVal,
		Average:  mean,
		Variance: variance,
	}
}

// ReportFileName 生成报表文件名，去掉空格和路径分隔符
func ReportFileName(prefix, label string) string {
	clean := strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(strings.TrimSpace(label))
	if clean == "" {
		return prefix + ".xlsx"
	}
	return prefix + "_" + clean + ".xlsx"
}
