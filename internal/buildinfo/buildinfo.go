// Package buildinfo 提供 snpkit 的构建标识信息。
//
// 这些常量用于生成文件溯源注释（见 pkg/tabular/xcsv 的 prepend-info 头），
// 不参与任何业务逻辑。
package buildinfo

const (
	// Name 项目名称。
	Name = "snpkit"

	// Version 当前版本号。发布时更新。
	Version = "0.1.0"

	// URL 项目主页，写入生成文件的溯源注释。
	URL = "https://github.com/snptools/snpkit"
)
