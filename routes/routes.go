package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/the1kimko/book-rental-management-system/app"
	"github.com/the1kimko/book-rental-management-system/controllers"
	"github.com/the1kimko/book-rental-management-system/service"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	users := service.NewUserService(a.Store)
	books := service.NewBookService(a.Store, a.Catalog)
	rentals := service.NewRentalService(a.Store, a.Catalog, a.Config.LoanPeriod, a.Config.LateFeePerDay)

	uc := controllers.NewUserController(users)
	bc := controllers.NewBookController(books)
	rc := controllers.NewRentalController(rentals)

	// ------------------------------
	// Users
	// ------------------------------
	u := r.Group("/api/users")
	{
		u.GET("", uc.ListUsers)
		u.GET("/search", uc.SearchUsers) // ?by=name|email&q=
		u.POST("", uc.CreateUser)
		u.DELETE("/:id", uc.DeleteUser)
	}

	// ------------------------------
	// Books
	// ------------------------------
	b := r.Group("/api/books")
	{
		b.GET("", bc.ListBooks) // ?available=1&sort=genre|author
		b.GET("/search", bc.SearchBooks)
		b.POST("", bc.CreateBook)
		b.DELETE("/:id", bc.DeleteBook)
	}

	// ------------------------------
	// Rentals
	// ------------------------------
	rt := r.Group("/api/rentals")
	{
		rt.GET("", rc.ListRentals)
		rt.POST("", rc.Rent)
		rt.POST("/:id/return", rc.Return)
	}
}
