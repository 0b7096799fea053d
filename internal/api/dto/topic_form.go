package dto

// NewTopicForm 新建主题表单：标题 + 首帖内容
type NewTopicForm struct {
	Subject string `form:"subject" validate:"required,max=255"`
	Message string `form:"message" validate:"required"`
}

// ReplyForm 回帖表单，编辑帖子时复用
type ReplyForm struct {
	Message string `form:"message" validate:"required"`
}
