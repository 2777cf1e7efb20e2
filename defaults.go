package devdocs

// DefaultCatalog returns the built-in product registry used when no catalog
// file is provided. Doc order within each product is meaningful and must be
// preserved.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Products: []*Product{
			{
				ID:          "consumer-app",
				Name:        "Consumer Mobile App",
				Icon:        "📱",
				Description: "The primary customer-facing application for ordering and profile management.",
				Docs: []*Document{
					{
						ID:          "c1",
						Title:       "Authentication Flow",
						Slug:        "auth-flow",
						Category:    "Core",
						LastUpdated: "2024-03-20",
						ContentPath: "/docs/consumer/auth-flow.md",
					},
					{
						ID:          "c2",
						Title:       "Order Lifecycle",
						Slug:        "order-lifecycle",
						Category:    "Business Logic",
						LastUpdated: "2024-03-22",
						ContentPath: "/docs/consumer/order-lifecycle.md",
					},
				},
			},
			{
				ID:          "delivery-app",
				Name:        "Delivery Partner App",
				Icon:        "🛵",
				Description: "Logistics application for couriers to manage tasks and navigate to locations.",
				Docs: []*Document{
					{
						ID:          "d1",
						Title:       "Real-time Tracking",
						Slug:        "tracking",
						Category:    "Infrastructure",
						LastUpdated: "2024-03-15",
						ContentPath: "/docs/delivery/tracking.md",
					},
				},
			},
			{
				ID:          "backend-gateway",
				Name:        "API Gateway",
				Icon:        "☁️",
				Description: "The central hub for all microservices, handling routing and security.",
				Docs: []*Document{
					{
						ID:          "auth",
						Title:       "Authentication",
						Slug:        "auth-flow",
						Category:    "Security",
						LastUpdated: "2026-02-15",
						ContentPath: "/docs/backend/auth/auth-flow.md",
					},
					{
						ID:          "order-entities",
						Title:       "Order Entities",
						Slug:        "order-entities",
						Category:    "Business",
						LastUpdated: "2026-02-15",
						ContentPath: "/docs/backend/order/order-entities.md",
					},
					{
						ID:          "order-create",
						Title:       "Order Creation LLD (Draft)",
						Slug:        "order-create",
						Category:    "Business",
						LastUpdated: "2026-02-16",
						ContentPath: "/docs/backend/order/order-create.md",
					},
					{
						ID:          "order-status-mutation",
						Title:       "Order Status Mutation",
						Slug:        "order-status-mutation",
						Category:    "Business",
						LastUpdated: "2026-02-19",
						ContentPath: "/docs/backend/order/order-status-update.md",
					},
					{
						ID:          "order-history",
						Title:       "Order History",
						Slug:        "order-history",
						Category:    "Business",
						LastUpdated: "2026-02-19",
						ContentPath: "/docs/backend/order/order-history.md",
					},
					{
						ID:          "pricing",
						Title:       "Pricing & Terms",
						Slug:        "pricing",
						Category:    "Business",
						LastUpdated: "2026-02-19",
						ContentPath: "/docs/backend/order/pricing.md",
					},
					{
						ID:          "addressbook",
						Title:       "Address Book",
						Slug:        "addressbook",
						Category:    "REST Api contracts",
						LastUpdated: "2026-02-26",
						ContentPath: "/docs/backend/api-contracts/addressbook.md",
					},
				},
			},
		},
	}
}
