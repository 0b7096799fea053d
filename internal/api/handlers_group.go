package api

import "Palaver/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	BoardHandler *handler.BoardHandler
	TopicHandler *handler.TopicHandler
	PostHandler  *handler.PostHandler
	UserHandler  *handler.UserHandler
}
