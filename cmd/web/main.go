// @title           Autoshop API
// @version         1.0
// @description     API автосервиса: сотрудники, каталог услуг, сообщения с формы обратной связи.
// @contact.name    Autoshop
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /

package main

import (
	"autoshop_backend/internal/app"

	_ "autoshop_backend/docs"
)

func main() {
	app.Run()
}
