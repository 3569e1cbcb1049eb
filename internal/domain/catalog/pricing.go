package catalog

// WorkshopFee is the flat per-workshop charge in rupees, applied both to
// standalone workshop selections and to pass overages.
const WorkshopFee = 100

// Selections is the priced subset of a registration request.
type Selections struct {
	PassID          *int
	TechEventIDs    []int
	WorkshopIDs     []int
	NonTechEventIDs []int
}

type LineItem struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount"`
}

// Quote is a server-computed amount with its line-item breakdown. Total is in
// whole rupees and never negative; a Total of 0 means the registration is
// free and bypasses the payment gateway.
type Quote struct {
	Total int        `json:"total"`
	Items []LineItem `json:"items"`
}

func (q Quote) IsFree() bool {
	return q.Total == 0
}

// Price computes the amount owed for sel. Unknown ids are skipped without
// charge or error; non-tech events never contribute (settled at the venue).
func (c *Catalog) Price(sel Selections, discountEligible bool) Quote {
	var q Quote

	techEvents := c.knownTechEvents(sel.TechEventIDs)
	workshopCount := c.knownWorkshopCount(sel.WorkshopIDs)

	pass, hasPass := Pass{}, false
	if sel.PassID != nil {
		pass, hasPass = c.PassByID(*sel.PassID)
	}

	if hasPass {
		q.add(pass.Name, 1, eligiblePrice(pass.Price, pass.CITPrice, discountEligible))

		if pass.AllowExtraTechEvents && len(techEvents) > pass.IncludedTechEvents {
			extras := techEvents[pass.IncludedTechEvents:]
			for _, e := range extras {
				q.add("Extra event: "+e.Title, 1, eligiblePrice(e.Price, e.CITPrice, discountEligible))
			}
		}

		if pass.AllowExtraWorkshops && workshopCount > pass.IncludedWorkshops {
			extra := workshopCount - pass.IncludedWorkshops
			q.add("Extra workshops", extra, extra*WorkshopFee)
		}
	} else {
		for _, e := range techEvents {
			q.add(e.Title, 1, eligiblePrice(e.Price, e.CITPrice, discountEligible))
		}
		if workshopCount > 0 {
			q.add("Workshops", workshopCount, workshopCount*WorkshopFee)
		}
	}

	if count := len(sel.NonTechEventIDs); count > 0 {
		q.add("Non-tech events (pay at venue)", count, 0)
	}

	if q.Total < 0 {
		q.Total = 0
	}
	return q
}

func (c *Catalog) knownTechEvents(ids []int) []Event {
	var out []Event
	for _, id := range ids {
		e, ok := c.EventByID(id)
		if !ok || e.Type != EventTypeTech {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (c *Catalog) knownWorkshopCount(ids []int) int {
	count := 0
	for _, id := range ids {
		if _, ok := c.WorkshopByID(id); ok {
			count++
		}
	}
	return count
}

func eligiblePrice(regular, cit int, discountEligible bool) int {
	if discountEligible && cit > 0 {
		return cit
	}
	return regular
}

func (q *Quote) add(label string, qty, amount int) {
	q.Items = append(q.Items, LineItem{Label: label, Quantity: qty, Amount: amount})
	q.Total += amount
}
