package handlers

// @title Checkout MerPag API
// @version 1.0
// @description Checkout forwarding to Mercado Pago for the Lojas Omena storefront

// @host localhost:8081
// @BasePath /api/v1

// @tag.name checkout
// @tag.description Payment and order creation
