package handler

import (
	"greengarden/internal/usecase"
)

var (
	authHandler     *AuthHandler
	plantHandler    *PlantHandler
	categoryHandler *CategoryHandler
	userHandler     *UserHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	plantUseCase *usecase.PlantUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	userUseCase *usecase.UserUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	plantHandler = NewPlantHandler(plantUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	userHandler = NewUserHandler(userUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetPlantHandler() *PlantHandler {
	return plantHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}
