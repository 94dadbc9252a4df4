// Package xtime 提供 UTC 时间工具。
//
// 本包只做一件事：以统一的方式获取和格式化 UTC 时间戳。生成文件的溯源注释
// （见 pkg/tabular/xcsv）依赖 [Timestamp] 布局，保证所有输出文件的时间戳
// 格式一致。
//
// [UTCNow] 返回的 time.Time 总是携带 UTC location，调用方无需再做时区转换。
package xtime
