package converter

import (
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/usecase"
)

// ProductConverter maps Product between domain and the PostgreSQL model.
type ProductConverter struct{}

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Price:       entity.Price,
		ImageURL:    entity.ImageURL,
		Description: entity.Description,
		Category:    entity.Category,
		Rating:      entity.Rating,
		ReviewText:  entity.ReviewText,
		IsNew:       entity.IsNew,
		IsSale:      entity.IsSale,
		Stock:       entity.Stock,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Price:       model.Price,
		ImageURL:    model.ImageURL,
		Description: model.Description,
		Category:    model.Category,
		Rating:      model.Rating,
		ReviewText:  model.ReviewText,
		IsNew:       model.IsNew,
		IsSale:      model.IsSale,
		Stock:       model.Stock,
	}
}

// UserConverter maps User between domain and the PostgreSQL model.
type UserConverter struct{}

func (UserConverter) ToEntity(model *UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		FullName:     model.FullName,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		Phone:        model.Phone,
		CreatedAt:    model.CreatedAt,
	}
}

// OrderConverter maps Order and OrderItem between domain and the PostgreSQL
// models.
type OrderConverter struct{}

func (OrderConverter) ToEntity(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:            model.ID,
		UserID:        model.UserID,
		CustomerName:  model.CustomerName,
		Address:       model.Address,
		Phone:         model.Phone,
		PaymentMethod: model.PaymentMethod,
		TotalPrice:    model.TotalPrice,
		Status:        domain.OrderStatus(model.Status),
		CreatedAt:     model.CreatedAt,
	}
}

func (OrderConverter) ItemToEntity(model *OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		ID:        model.ID,
		OrderID:   model.OrderID,
		ProductID: model.ProductID,
		UnitPrice: model.UnitPrice,
		Quantity:  model.Quantity,
	}
}

// OutboxEventConverter maps OutboxEvent between usecase and the PostgreSQL
// model.
type OutboxEventConverter struct{}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	if models == nil {
		return nil
	}

	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		entities = append(entities, c.ToEntity(model))
	}

	return entities
}
