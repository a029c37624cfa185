package queries

import "context"

// Subscription plans are static marketing content: no pricing logic, no
// payment integration, just data for the Plans view.

type PlanQueries interface {
	List(ctx context.Context) ([]*PlanView, error)
}

type planQueriesImpl struct{}

func NewPlanQueries() PlanQueries {
	return &planQueriesImpl{}
}

func (q *planQueriesImpl) List(_ context.Context) ([]*PlanView, error) {
	return []*PlanView{
		{
			ID:     "monthly",
			Name:   "Coffee Explorer",
			Price:  "₹299",
			Period: "per month",
			Features: []string{
				"5 free bookings monthly",
				"Basic cafe recommendations",
				"Standard support",
				"Mobile app access",
			},
		},
		{
			ID:      "quarterly",
			Name:    "Cafe Connoisseur",
			Price:   "₹799",
			Period:  "per quarter",
			Savings: "Save ₹97",
			Features: []string{
				"20 free bookings quarterly",
				"Priority cafe access",
				"Advanced recommendations",
				"Member-only offers",
				"Premium support",
				"Early access to new cafes",
			},
			Popular: true,
		},
		{
			ID:      "yearly",
			Name:    "Cafe Champion",
			Price:   "₹2,999",
			Period:  "per year",
			Savings: "Save ₹589",
			Features: []string{
				"Unlimited bookings",
				"VIP cafe access",
				"Personalized concierge",
				"Exclusive events access",
				"Premium member rewards",
				"Priority customer support",
				"Annual cafe tour passes",
			},
		},
	}, nil
}
