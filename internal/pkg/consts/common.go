package consts

const (
	// TopicsPageSize 版块主题列表每页条数
	TopicsPageSize = 20
	// PostsPageSize 主题帖子列表每页条数
	PostsPageSize = 2
)

const (
	SubjectMaxLength  = 255
	UsernameMaxLength = 150
	PasswordMinLength = 6
)

const (
	SessionCookieName = "palaver_token"
	CSRFCookieName    = "palaver_csrf"
	CSRFFieldName     = "csrf_token"
)
