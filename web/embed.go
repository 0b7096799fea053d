// Package web 内嵌页面模板，二进制自带无需外部文件
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
