package consts

const (
	TokenDenyKey      = "auth:token:deny:"
	PasswordResetKey  = "auth:password:reset:"
	TopicViewDirtyKey = "topic:view:dirty"
)
