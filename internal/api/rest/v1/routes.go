package v1

import (
	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	userService users.UserService,
	contactService contacts.ContactService,
	domainService domains.DomainService,
	checkoutService checkouts.CheckoutService) {

	v1 := r.Group(BasePath) // lookup in version file

	userHandler := NewUserHandler(userService)
	v1.POST("/signup", userHandler.Signup)
	v1.POST("/login", userHandler.Login)

	authorized := v1.Group("")
	authorized.Use(AuthMiddleware(userService))
	authorized.GET("/me", userHandler.Me)

	// Domains Routes
	domainHandler := NewDomainHandler(domainService)
	authorized.GET("/", domainHandler.List)
	authorized.POST("/domains", domainHandler.Create)
	authorized.GET("/domains", domainHandler.List)
	authorized.GET("/domains/check", domainHandler.Check)
	authorized.GET("/domains/:id", domainHandler.GetByID)

	// Contacts Routes
	contactHandler := NewContactHandler(contactService)
	authorized.POST("/contacts", contactHandler.Create)
	authorized.GET("/contacts", contactHandler.List)
	authorized.GET("/contacts/:id", contactHandler.GetByID)
	authorized.DELETE("/contacts/:id", contactHandler.DeleteByID)

	// Checkouts Routes
	checkoutHandler := NewCheckoutHandler(checkoutService)
	authorized.POST("/domains/:id/checkout", checkoutHandler.Start)
	authorized.GET("/checkouts", checkoutHandler.List)
	authorized.POST("/checkout/:id/success", checkoutHandler.Success)
	authorized.POST("/checkout/:id/failure", checkoutHandler.Failure)
}
