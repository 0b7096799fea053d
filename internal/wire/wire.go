package wire

import (
	"Palaver/internal/api"
	"Palaver/internal/api/handler"
	"Palaver/internal/job"
	"Palaver/internal/pkg/cron"
	"Palaver/internal/repository"
	"Palaver/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	boardRepo := repository.NewBoardRepo(db)
	topicRepo := repository.NewTopicRepo(db)
	postRepo := repository.NewPostRepo(db)
	userRepo := repository.NewUserRepo(db)
	topicMetricRepo := repository.NewTopicMetricRepo(db)

	boardService := service.NewBoardService(boardRepo)
	topicService := service.NewTopicService(boardRepo, topicRepo)
	postService := service.NewPostService(topicRepo, postRepo)
	mailService := service.NewMailService()
	userService := service.NewUserService(userRepo, mailService)
	topicMetricService := service.NewTopicMetricService(topicMetricRepo, topicRepo, postRepo)

	handlers := &api.HandlersGroup{
		BoardHandler: handler.NewBoardHandler(boardService),
		TopicHandler: handler.NewTopicHandler(topicService),
		PostHandler:  handler.NewPostHandler(postService),
		UserHandler:  handler.NewUserHandler(userService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewTopicMetricsJob(topicMetricService))

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronMgr,
	}, nil
}
