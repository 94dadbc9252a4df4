package xtime

import "time"

// Timestamp 溯源注释使用的时间戳布局（YYYY-MM-DD HH:MM:SS）。
const Timestamp = "2006-01-02 15:04:05"

// UTCNow 返回当前 UTC 时间。
//
// 返回值的 Location 恒为 time.UTC，直接用于比较、格式化均无时区歧义。
func UTCNow() time.Time {
	return time.Now().UTC()
}

// FormatUTC 将任意时间转换为 UTC 并按 [Timestamp] 布局格式化。
func FormatUTC(t time.Time) string {
	return t.UTC().Format(Timestamp)
}
