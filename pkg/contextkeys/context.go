package contextkeys

type contextKey string

// DBContextKey - ключ *gorm.DB. DBMiddleware кладет под ним базу в gin.Context,
// BaseHandler.GetDB достает. В context.Context запроса под ним может лежать
// уже открытая транзакция.
const DBContextKey = contextKey("db")
