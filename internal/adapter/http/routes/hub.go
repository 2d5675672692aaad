package routes

import (
	"bizhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes               = "/quotes"
	PathContacts             = "/contacts"
	PathOrganisations        = "/organisations"
	PathOrganisationContacts = "/organisation-contacts"
	PathWebsites             = "/websites"
	PathFormFields           = "/form-fields"
	PathFieldValues          = "/form-field-values"
)

func addHubRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	contactHandler *handlers.ContactHandler,
	organisationHandler *handlers.OrganisationHandler,
	websiteHandler *handlers.WebsiteHandler,
	fieldValueHandler *handlers.FieldValueHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.POST("/:id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:id/organisation", quoteHandler.LinkOrganisation)
		quotes.PATCH("/:id/contact", quoteHandler.LinkContact)
		quotes.PATCH("/:id/lead", quoteHandler.LinkLead)
		quotes.PATCH("/:id/project", quoteHandler.LinkProject)
	}

	contacts := rg.Group(PathContacts)
	{
		contacts.POST("", contactHandler.CreateContact)
		contacts.GET("", contactHandler.ListContacts)
		contacts.GET("/:id", contactHandler.GetContact)
		contacts.PATCH("/:id", contactHandler.UpdateContact)
		contacts.DELETE("/:id", contactHandler.DeleteContact)
	}

	organisations := rg.Group(PathOrganisations)
	{
		organisations.POST("", organisationHandler.CreateOrganisation)
		organisations.GET("", organisationHandler.ListOrganisations)
		organisations.GET("/:id", organisationHandler.GetOrganisation)
		organisations.PATCH("/:id", organisationHandler.UpdateOrganisation)
		organisations.DELETE("/:id", organisationHandler.DeleteOrganisation)
		organisations.GET("/:id/contacts", organisationHandler.ListOrganisationContacts)
		organisations.POST("/:id/contacts", organisationHandler.LinkContact)
	}

	organisationContacts := rg.Group(PathOrganisationContacts)
	{
		organisationContacts.PATCH("/:id", organisationHandler.UpdateOrganisationContact)
		organisationContacts.DELETE("/:id", organisationHandler.UnlinkContact)
		organisationContacts.POST("/:id/primary", organisationHandler.SetPrimaryContact)
	}

	websites := rg.Group(PathWebsites)
	{
		websites.POST("", websiteHandler.CreateWebsite)
		websites.GET("", websiteHandler.ListWebsites)
		websites.GET("/:id", websiteHandler.GetWebsite)
		websites.PATCH("/:id", websiteHandler.UpdateWebsite)
		websites.DELETE("/:id", websiteHandler.DeleteWebsite)
	}

	formFields := rg.Group(PathFormFields)
	{
		formFields.GET("/:type/values", fieldValueHandler.ListFieldValues)
		formFields.POST("/:type/values", fieldValueHandler.CreateFieldValue)
	}

	fieldValues := rg.Group(PathFieldValues)
	{
		fieldValues.PATCH("/:id", fieldValueHandler.UpdateFieldValue)
		fieldValues.DELETE("/:id", fieldValueHandler.DeleteFieldValue)
	}
}
