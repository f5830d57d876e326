package main

import (
	"flag"
	"fmt"
	"net/http"

	"mergington-activities/common/response"
	"mergington-activities/internal/config"
	"mergington-activities/internal/handler"
	"mergington-activities/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/activities-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 设置全局错误处理器（必须在 server.Start() 之前）
	// 所有 handler 返回的 error 在这里统一转成 {"detail": ...} 响应
	response.SetupGlobalErrorHandler()

	// 1. 加载配置文件
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. 创建 REST 服务器，按配置挂载静态页面
	opts := []rest.RunOption{}
	if c.Static.Dir != "" {
		opts = append(opts, rest.WithFileServer("/static", http.Dir(c.Static.Dir)))
	}
	server := rest.MustNewServer(c.RestConf, opts...)
	defer server.Stop()

	// 3. 初始化服务上下文（活动目录在这里构造并注入）
	ctx := svc.NewServiceContext(c)

	// 4. 注册路由处理器
	handler.RegisterHandlers(server, ctx)

	// 5. 启动服务
	fmt.Printf("Starting activities-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// 课外活动报名服务入口
// 说明：
//   activities-api 提供活动目录的 HTTP 接口：
//   - 活动列表
//   - 报名 / 取消报名
//   活动集合启动时固定写入，状态仅存在于进程内。
//
// 启动命令：
//   go run activities.go -f etc/activities-api.yaml
