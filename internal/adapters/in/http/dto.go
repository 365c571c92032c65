package http

import (
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/generated/servers"
)

// Requests

func itemUpdate(req servers.ItemStatusUpdate, status item.Status, processedBy kernel.UUID) item.Update {
	return item.Update{
		Status:                  status,
		ProcessedBy:             processedBy,
		InitialCondition:        conditionPtr(req.InitialCondition),
		FinalCondition:          conditionPtr(req.FinalCondition),
		HasStains:               req.HasStains,
		StainNotes:              req.StainNotes,
		StainPhotos:             valueOf(req.StainPhotos),
		HasDamage:               req.HasDamage,
		DamageNotes:             req.DamageNotes,
		DamagePhotos:            valueOf(req.DamagePhotos),
		QualityScore:            req.QualityScore,
		AdditionalCharges:       req.AdditionalCharges,
		AdditionalChargesReason: req.AdditionalChargesReason,
		Notes:                   req.Notes,
	}
}

func conditionPtr(raw *servers.ItemCondition) *item.Condition {
	if raw == nil {
		return nil
	}
	c := item.Condition(*raw)
	return &c
}

func apiCondition(raw string) *servers.ItemCondition {
	if raw == "" {
		return nil
	}
	c := servers.ItemCondition(raw)
	return &c
}

// Orders

func orderFromDomain(o *order.Order) servers.Order {
	f := o.Financials()
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, servers.OrderItem{
			Id:       apiID(it.ID()),
			Garment:  it.Garment(),
			Service:  it.Service(),
			Quantity: it.Quantity(),
		})
	}

	return servers.Order{
		Id:                apiID(o.ID()),
		CustomerId:        apiID(o.CustomerID()),
		PickupAddressId:   apiID(o.Addresses().Pickup),
		DeliveryAddressId: apiID(o.Addresses().Delivery),
		Pincode:           o.Pincode().String(),
		Status:            servers.OrderStatus(o.Status().String()),
		PaymentStatus:     servers.PaymentStatus(o.PaymentStatus()),
		Subtotal:          f.Subtotal(),
		DeliveryFee:       f.DeliveryFee(),
		Discount:          f.Discount(),
		Tax:               f.Tax(),
		Total:             f.Total(),
		AssignedPartnerId: apiIDPtr(o.AssignedPartner()),
		PartnerAcceptedAt: o.PartnerAcceptedAt(),
		PartnerRejectedAt: o.PartnerRejectedAt(),
		RejectionReason:   optional(o.RejectionReason()),
		CreatedAt:         o.CreatedAt(),
		ConfirmedAt:       o.ConfirmedAt(),
		CompletedAt:       o.CompletedAt(),
		CancelledAt:       o.CancelledAt(),
		Version:           o.Version(),
		Items:             items,
	}
}

func orderFromQuery(r queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, servers.OrderItem{
			Id:       apiID(it.ID),
			Garment:  it.Garment,
			Service:  it.Service,
			Quantity: it.Quantity,
		})
	}
	history := make([]servers.StatusChange, 0, len(r.History))
	for _, h := range r.History {
		history = append(history, servers.StatusChange{
			From:      h.From,
			To:        h.To,
			ActorId:   apiID(h.ActorID),
			Notes:     optional(h.Notes),
			ChangedAt: h.ChangedAt,
		})
	}

	return servers.Order{
		Id:                apiID(r.ID),
		CustomerId:        apiID(r.CustomerID),
		PickupAddressId:   apiID(r.PickupAddressID),
		DeliveryAddressId: apiID(r.DeliveryAddressID),
		Pincode:           r.Pincode,
		Status:            servers.OrderStatus(r.Status),
		PaymentStatus:     servers.PaymentStatus(r.PaymentStatus),
		Subtotal:          r.Subtotal,
		DeliveryFee:       r.DeliveryFee,
		Discount:          r.Discount,
		Tax:               r.Tax,
		Total:             r.Total,
		AssignedPartnerId: apiIDPtr(r.AssignedPartnerID),
		PartnerAcceptedAt: r.PartnerAcceptedAt,
		PartnerRejectedAt: r.PartnerRejectedAt,
		RejectionReason:   optional(r.RejectionReason),
		CreatedAt:         r.CreatedAt,
		ConfirmedAt:       r.ConfirmedAt,
		CompletedAt:       r.CompletedAt,
		CancelledAt:       r.CancelledAt,
		Version:           r.Version,
		Items:             items,
		History:           &history,
	}
}

// Stages

func stageFromDomain(s *stage.ProcessingStage) servers.Stage {
	photos := make([]servers.Photo, 0, len(s.Photos()))
	for _, key := range s.Photos() {
		photos = append(photos, servers.Photo{Key: key})
	}

	orderID := apiID(s.OrderID())
	view := servers.Stage{
		Id:               apiID(s.ID()),
		OrderId:          &orderID,
		Stage:            servers.StageName(s.Stage().String()),
		Category:         servers.StageCategory(s.Category()),
		PerformedBy:      apiID(s.PerformedBy()),
		Notes:            optional(s.Notes()),
		Photos:           photos,
		HasIssue:         s.HasIssue(),
		IssueDescription: optional(s.IssueDescription()),
		StartedAt:        s.StartedAt(),
		CompletedAt:      s.CompletedAt(),
	}
	if d, ok := s.Duration(); ok {
		view.DurationSeconds = seconds(d)
	}
	return view
}

func stageFromQuery(v queries.StageView) servers.Stage {
	photos := make([]servers.Photo, 0, len(v.Photos))
	for _, p := range v.Photos {
		photos = append(photos, servers.Photo{Key: p.Key, Url: optional(p.URL)})
	}

	view := servers.Stage{
		Id:               apiID(v.ID),
		Stage:            servers.StageName(v.Stage),
		Category:         servers.StageCategory(v.Category),
		PerformedBy:      apiID(v.PerformedBy),
		Notes:            optional(v.Notes),
		Photos:           photos,
		HasIssue:         v.HasIssue,
		IssueDescription: optional(v.IssueDescription),
		StartedAt:        v.StartedAt,
		CompletedAt:      v.CompletedAt,
	}
	if v.Duration != nil {
		view.DurationSeconds = seconds(*v.Duration)
	}
	return view
}

func seconds(d time.Duration) *float64 {
	s := d.Seconds()
	return &s
}

func recordStageFromResult(r commands.RecordStageResult) servers.RecordStageResponse {
	resp := servers.RecordStageResponse{
		Stage:                  stageFromDomain(r.Stage),
		OrderStatus:            servers.OrderStatus(r.Order.Status().String()),
		StatusTransitionFailed: r.StatusTransitionFailed,
		FailureReason:          optional(r.FailureReason),
		PendingItems:           r.PendingItems,
	}
	if r.ProjectedStatus != nil {
		projected := servers.OrderStatus(r.ProjectedStatus.String())
		resp.ProjectedStatus = &projected
	}
	return resp
}

// Items

func itemFromDomain(p *item.Processing) servers.ItemProcessing {
	f := p.Findings()
	ts := p.Timestamps()
	resp := servers.ItemProcessing{
		Id:                      apiID(p.ID()),
		OrderId:                 apiID(p.OrderID()),
		OrderItemId:             apiID(p.OrderItemID()),
		Status:                  servers.ItemStatus(p.Status().String()),
		InitialCondition:        apiCondition(string(f.InitialCondition)),
		FinalCondition:          apiCondition(string(f.FinalCondition)),
		HasStains:               f.HasStains,
		StainNotes:              optional(f.StainNotes),
		StainPhotos:             nonNil(f.StainPhotos),
		HasDamage:               f.HasDamage,
		DamageNotes:             optional(f.DamageNotes),
		DamagePhotos:            nonNil(f.DamagePhotos),
		InspectionAt:            ts.InspectionAt,
		WashingStartedAt:        ts.WashingStartedAt,
		WashingCompletedAt:      ts.WashingCompletedAt,
		DryingStartedAt:         ts.DryingStartedAt,
		DryingCompletedAt:       ts.DryingCompletedAt,
		IroningStartedAt:        ts.IroningStartedAt,
		IroningCompletedAt:      ts.IroningCompletedAt,
		QualityCheckedAt:        ts.QualityCheckedAt,
		PackagedAt:              ts.PackagedAt,
		CompletedAt:             ts.CompletedAt,
		QualityScore:            p.QualityScore(),
		AdditionalCharges:       p.AdditionalCharges(),
		AdditionalChargesReason: optional(p.AdditionalChargesReason()),
		ProcessedBy:             apiIDPtr(p.ProcessedBy()),
		Notes:                   optional(p.Notes()),
	}
	if hours, ok := p.CalculateProcessingTime(); ok {
		resp.ProcessingHours = &hours
	}
	return resp
}

func itemFromQuery(r queries.GetItemProcessingQueryResponse) servers.ItemProcessing {
	return servers.ItemProcessing{
		Id:                      apiID(r.ID),
		OrderId:                 apiID(r.OrderID),
		OrderItemId:             apiID(r.OrderItemID),
		Status:                  servers.ItemStatus(r.Status),
		InitialCondition:        apiCondition(r.InitialCondition),
		FinalCondition:          apiCondition(r.FinalCondition),
		HasStains:               r.HasStains,
		StainNotes:              optional(r.StainNotes),
		StainPhotos:             nonNil(r.StainPhotos),
		HasDamage:               r.HasDamage,
		DamageNotes:             optional(r.DamageNotes),
		DamagePhotos:            nonNil(r.DamagePhotos),
		InspectionAt:            r.InspectionAt,
		WashingStartedAt:        r.WashingStartedAt,
		WashingCompletedAt:      r.WashingCompletedAt,
		DryingStartedAt:         r.DryingStartedAt,
		DryingCompletedAt:       r.DryingCompletedAt,
		IroningStartedAt:        r.IroningStartedAt,
		IroningCompletedAt:      r.IroningCompletedAt,
		QualityCheckedAt:        r.QualityCheckedAt,
		PackagedAt:              r.PackagedAt,
		CompletedAt:             r.CompletedAt,
		QualityScore:            r.QualityScore,
		AdditionalCharges:       r.AdditionalCharges,
		AdditionalChargesReason: optional(r.AdditionalChargesReason),
		ProcessedBy:             apiIDPtr(r.ProcessedBy),
		Notes:                   optional(r.Notes),
		ProcessingHours:         r.ProcessingHours,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Partners

func partnerFromDomain(p *partner.Partner) servers.Partner {
	areas := make([]string, 0, len(p.ServiceAreas()))
	for _, a := range p.ServiceAreas() {
		areas = append(areas, a.Pincode().String())
	}

	return servers.Partner{
		Id:            apiID(p.ID()),
		BusinessName:  p.BusinessName(),
		Zone:          p.Zone(),
		Status:        servers.PartnerStatus(p.Status().String()),
		IsVerified:    p.IsVerified(),
		DailyCapacity: p.DailyCapacity(),
		CurrentLoad:   p.CurrentLoad(),
		AverageRating: p.AverageRating(),
		ServiceAreas:  areas,
		VerifiedAt:    p.VerifiedAt(),
		CreatedAt:     p.CreatedAt(),
	}
}
