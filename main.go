//	@title			Referral Backend
//	@version		0.1.0
//	@description	Course referral intake service

//	@license.name	Apache 2.0
//	@license.url	https://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:5000
//	@BasePath	/api

package main

import (
	"fmt"
	"github.com/gofiber/fiber/v2"
	"log"
	"os"
	"os/signal"
	"referral_backend/apis"
	"referral_backend/apis/referral"
	"referral_backend/config"
	_ "referral_backend/docs"
	"referral_backend/middlewares"
	"referral_backend/models"
	"referral_backend/utils"
	"referral_backend/utils/mail"
	"syscall"
)

func main() {
	config.InitConfig()
	utils.SetDebug(config.Config.Debug)
	models.InitDB()
	mail.InitMailer()
	referral.InitLimiter()

	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: utils.MyErrorHandler,
	})
	middlewares.RegisterMiddlewares(app)
	apis.RegisterRoutes(app)

	go func() {
		err := app.Listen(fmt.Sprintf("0.0.0.0:%d", config.Config.Port))
		if err != nil {
			log.Println(err)
		}
	}()

	interrupt := make(chan os.Signal, 1)

	// wait for CTRL-C interrupt
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-interrupt

	// close app
	err := app.Shutdown()
	if err != nil {
		log.Println(err)
	}

	_ = utils.Logger.Sync()
}
