package handlers

import (
	"stockroom/internal/config"
	"stockroom/internal/kv"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

type Deps struct {
	DashboardHandler *DashboardHandler
	CategoryHandler  *CategoryHandler
	ItemHandler      *ItemHandler
	StockHandler     *StockHandler
	APIHandler       *APIHandler
	AdminHandler     *AdminHandler
}

func NewDeps(store kv.Store, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(store)
	itemRepo := repos.NewItemRepo(store)
	moveRepo := repos.NewMovementRepo(store)
	userRepo := repos.NewUserRepo(store)

	invSvc := services.NewInventoryService(catRepo, itemRepo)
	stockSvc := services.NewStockService(itemRepo, moveRepo)

	return &Deps{
		DashboardHandler: &DashboardHandler{Inv: invSvc},
		CategoryHandler:  &CategoryHandler{Inv: invSvc},
		ItemHandler:      &ItemHandler{Inv: invSvc},
		StockHandler:     &StockHandler{Stock: stockSvc, Inv: invSvc},
		APIHandler:       &APIHandler{Inv: invSvc},
		AdminHandler:     &AdminHandler{Users: userRepo},
	}
}
