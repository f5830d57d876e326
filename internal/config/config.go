// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// CORS 跨域配置
	Cors CorsConfig

	// 静态页面配置
	Static StaticConfig
}

// CorsConfig CORS 跨域配置
type CorsConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// StaticConfig 静态页面配置
// Dir 为空时不挂载静态文件服务
type StaticConfig struct {
	Dir string `json:",optional"`
}
