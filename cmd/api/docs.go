package main

// @title PawHaven API
// @version 1.0
// @description Pet adoption marketplace: catalog, likes, adoptions and profiles
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description Account endpoints

// @tag.name Pets
// @tag.description Pet catalog endpoints

// @tag.name Profile
// @tag.description Profile aggregation endpoints

// @tag.name Uploads
// @tag.description Image upload endpoints

// @tag.name Health
// @tag.description Health check endpoints
