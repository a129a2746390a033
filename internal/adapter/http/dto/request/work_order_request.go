package request

import (
	"errors"
	"strings"
	"time"

	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/internal/usecase/interfaces"
)

var ErrInvalidOpenedAtRange = errors.New("opened_from and opened_to must be RFC3339 timestamps")

type WorkOrderPartRequest struct {
	PartID   string `json:"part_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

func (r WorkOrderPartRequest) ToInput() usecase.PartItemInput {
	return usecase.PartItemInput{PartID: strings.TrimSpace(r.PartID), Quantity: r.Quantity}
}

type CreateWorkOrderRequest struct {
	CustomerID string                 `json:"customer_id" binding:"required"`
	MechanicID string                 `json:"mechanic_id" binding:"required"`
	ServiceIDs []string               `json:"service_ids" binding:"dive,required"`
	Parts      []WorkOrderPartRequest `json:"parts" binding:"dive"`
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	in := usecase.CreateWorkOrderInput{
		CustomerID: strings.TrimSpace(r.CustomerID),
		MechanicID: strings.TrimSpace(r.MechanicID),
		ServiceIDs: make([]string, 0, len(r.ServiceIDs)),
		Parts:      make([]usecase.PartItemInput, 0, len(r.Parts)),
	}
	for _, id := range r.ServiceIDs {
		in.ServiceIDs = append(in.ServiceIDs, strings.TrimSpace(id))
	}
	for _, p := range r.Parts {
		in.Parts = append(in.Parts, p.ToInput())
	}
	return in
}

// UpdateWorkOrderRequest reassigns an order. An omitted id keeps the current
// one, but at least one must be sent.
type UpdateWorkOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required_without=MechanicID"`
	MechanicID string `json:"mechanic_id" binding:"required_without=CustomerID"`
}

type AddServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// ListWorkOrdersQuery holds the list filters. The opened-at range applies only
// when both bounds are sent.
type ListWorkOrdersQuery struct {
	PageQuery

	CustomerID   string `form:"customer_id"`
	MechanicID   string `form:"mechanic_id"`
	CustomerName string `form:"customer_name"`
	MechanicName string `form:"mechanic_name"`
	OpenedFrom   string `form:"opened_from"`
	OpenedTo     string `form:"opened_to"`
}

func (q ListWorkOrdersQuery) ToFilter() (interfaces.WorkOrderFilter, error) {
	filter := interfaces.WorkOrderFilter{
		Page:         q.ToPage(),
		CustomerID:   strings.TrimSpace(q.CustomerID),
		MechanicID:   strings.TrimSpace(q.MechanicID),
		CustomerName: strings.TrimSpace(q.CustomerName),
		MechanicName: strings.TrimSpace(q.MechanicName),
	}

	from, to := strings.TrimSpace(q.OpenedFrom), strings.TrimSpace(q.OpenedTo)
	if from == "" || to == "" {
		return filter, nil
	}
	fromTime, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return interfaces.WorkOrderFilter{}, ErrInvalidOpenedAtRange
	}
	toTime, err := time.Parse(time.RFC3339, to)
	if err != nil {
		return interfaces.WorkOrderFilter{}, ErrInvalidOpenedAtRange
	}
	fromTime, toTime = fromTime.UTC(), toTime.UTC()
	filter.OpenedAtFrom = &fromTime
	filter.OpenedAtTo = &toTime
	return filter, nil
}
