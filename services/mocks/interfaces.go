package mocks

import (
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

var (
	_ services.UserRepository        = (*UserRepository)(nil)
	_ services.MenuItemRepository    = (*MenuItemRepository)(nil)
	_ services.TableRepository       = (*TableRepository)(nil)
	_ services.OrderRepository       = (*OrderRepository)(nil)
	_ services.PaymentRepository     = (*PaymentRepository)(nil)
	_ services.ReservationRepository = (*ReservationRepository)(nil)
	_ services.FeedbackRepository    = (*FeedbackRepository)(nil)
	_ services.ReportRepository      = (*ReportRepository)(nil)
	_ services.TokenRevoker          = (*TokenRevoker)(nil)
	_ services.OrderEventPublisher   = (*OrderEventPublisher)(nil)

	_ services.AuthServiceInterface        = (*AuthService)(nil)
	_ services.UserServiceInterface        = (*UserService)(nil)
	_ services.MenuServiceInterface        = (*MenuService)(nil)
	_ services.TableServiceInterface       = (*TableService)(nil)
	_ services.OrderServiceInterface       = (*OrderService)(nil)
	_ services.ReservationServiceInterface = (*ReservationService)(nil)
	_ services.FeedbackServiceInterface    = (*FeedbackService)(nil)
	_ services.ReportServiceInterface      = (*ReportService)(nil)
)
