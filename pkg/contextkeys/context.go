package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому DBMiddleware кладет *gorm.DB в gin.Context
const DBContextKey = contextKey("db")

// UserIDKey - ключ gin.Context, под которым AuthMiddleware кладет id пользователя
const UserIDKey = "userID"
