package server

import (
	bidding "studybid/internal/biddingService"
	handler "studybid/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/current-bid", biddingHandler.GetCurrentBidHandler)
		auctions.GET("/bids", biddingHandler.GetLastBidsHandler)
		auctions.GET("/ended", biddingHandler.GetAuctionEndedHandler)
		auctions.POST("/close", biddingHandler.ForceCloseAuctionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("/single", biddingHandler.PlaceSingleBidHandler)
	}

	groups := router.Group("/groups")
	{
		groups.GET("", biddingHandler.GetPendingGroupHandler)
		groups.POST("", biddingHandler.StartGroupBidHandler)
		groups.POST("/join", biddingHandler.JoinGroupBidHandler)
		groups.PUT("/member", biddingHandler.UpdateGroupMemberBidHandler)
		groups.POST("/submit", biddingHandler.SubmitGroupBidHandler)
		groups.POST("/cancel", biddingHandler.CancelGroupBidHandler)
	}

	reservations := router.Group("/reservations")
	{
		reservations.POST("/cancel", biddingHandler.CancelReservationHandler)
		reservations.POST("/group/cancel", biddingHandler.CancelGroupReservationHandler)
	}

	secondChances := router.Group("/second-chances")
	{
		secondChances.POST("/accept", biddingHandler.AcceptSecondChanceHandler)
		secondChances.POST("/decline", biddingHandler.DeclineSecondChanceHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/balance", biddingHandler.GetBalanceHandler)
		users.POST("/:user_id/tokens", biddingHandler.AddTokensHandler)
		users.GET("/:user_id/bids", biddingHandler.GetUserBidHistoryHandler)
		users.GET("/:user_id/reservations", biddingHandler.GetUserReservationsHandler)
		users.GET("/:user_id/groups", biddingHandler.GetUserPendingGroupsHandler)
		users.GET("/:user_id/second-chances", biddingHandler.GetSecondChancesHandler)
	}

	return router
}
