package routes

import (
	"fanvoyage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads  = "/leads"
	PathQuotes = "/quotes"
)

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("/:lead_id", leadHandler.GetLead)
		leads.PATCH("/:lead_id", leadHandler.UpdateLead)
		leads.PATCH("/:lead_id/status", leadHandler.TransitionLeadStatus)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.GenerateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id/view", quoteHandler.MarkViewed)
		quotes.PATCH("/:quote_id/accept", quoteHandler.Accept)
		quotes.PATCH("/:quote_id/decline", quoteHandler.Decline)
		quotes.PATCH("/:quote_id/expire", quoteHandler.Expire)
		quotes.PUT("/:quote_id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:quote_id", quoteHandler.DeleteQuote)
	}

	rg.GET(PathLeads+"/:lead_id"+PathQuotes, quoteHandler.ListQuotesByLead)
}
