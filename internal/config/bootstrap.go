package config

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/handler"
	"github.com/quizforge/quizforge-be/internal/delivery/http/middleware"
	"github.com/quizforge/quizforge-be/internal/delivery/http/repository"
	"github.com/quizforge/quizforge-be/internal/delivery/http/route"
	"github.com/quizforge/quizforge-be/internal/delivery/http/usecase"
	"github.com/quizforge/quizforge-be/internal/pkg/llm"
	"github.com/quizforge/quizforge-be/internal/pkg/validate"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	if err := config.Validator.RegisterRule("category", "must be a supported question category", usecase.KnownCategory); err != nil {
		config.Log.Fatalf("Failed to register category validation: %v", err)
	}

	generator := newGenerator(config.Config, config.Log)

	performanceRepo := repository.NewPerformanceRepository(config.DB)
	questionRepo := repository.NewQuestionRepository(config.DB)
	resultRepo := repository.NewResultRepository(config.DB)
	userRepo := repository.NewUserRepository(config.DB)
	shopRepo := repository.NewShopRepository(config.DB)

	quizUsecase := usecase.NewQuizUsecase(usecase.QuizConfig{
		DB:          config.DB,
		Generator:   generator,
		Log:         config.Log,
		Config:      config.Config,
		Performance: performanceRepo,
		Questions:   questionRepo,
		Results:     resultRepo,
		Users:       userRepo,
		Shop:        shopRepo,
	})
	authUsecase := usecase.NewAuthUsecase(usecase.AuthConfig{
		DB:     config.DB,
		Log:    config.Log,
		Config: config.Config,
		Users:  userRepo,
	})
	shopUsecase := usecase.NewShopUsecase(usecase.ShopConfig{
		DB:    config.DB,
		Log:   config.Log,
		Users: userRepo,
		Shop:  shopRepo,
	})
	leaderboardUsecase := usecase.NewLeaderboardUsecase(usecase.LeaderboardConfig{
		DB:      config.DB,
		Log:     config.Log,
		Results: resultRepo,
	})

	quizHandler := handler.NewQuizHandler(config.Validator, config.Log, quizUsecase)
	authHandler := handler.NewAuthHandler(config.Validator, config.Log, authUsecase)
	shopHandler := handler.NewShopHandler(config.Validator, config.Log, shopUsecase)
	leaderboardHandler := handler.NewLeaderboardHandler(config.Log, leaderboardUsecase)

	route.Setup(&route.RouteConfig{
		Api:                config.Api,
		Middleware:         mid,
		QuizHandler:        quizHandler,
		AuthHandler:        authHandler,
		ShopHandler:        shopHandler,
		LeaderboardHandler: leaderboardHandler,
	})

}

// newGenerator builds the text generator named by llm.provider. A disabled or
// misconfigured provider yields nil, which routes every acquisition through
// the static bank.
func newGenerator(config *viper.Viper, log *logrus.Logger) usecase.TextGenerator {
	if config == nil || !config.GetBool("llm.enabled") {
		log.Info("External question generation disabled, serving from static bank")
		return nil
	}

	provider := config.GetString("llm.provider")
	apiKey := config.GetString("llm.api_key")
	model := config.GetString("llm.model")

	switch provider {
	case "gemini":
		client, err := llm.NewGeminiClient(context.Background(), apiKey, model)
		if err != nil {
			log.Warnf("Failed to initialize gemini client, falling back to static bank: %v", err)
			return nil
		}
		return client
	case "openai", "":
		return llm.NewOpenAIClient(apiKey, model, config.GetString("llm.base_url"))
	default:
		log.Warnf("Unknown llm provider %q, serving from static bank", provider)
		return nil
	}
}
