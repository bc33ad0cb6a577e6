package controller

import (
	"net/http"
)

// PricingPlans returns all plans, or a single plan when the badge
// query param names one.
func (c *Controller) PricingPlans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	if badge := r.URL.Query().Get("badge"); badge != "" {
		plan, err := c.store.PricingPlanByName(ctx, badge)
		if err != nil {
			c.storeError(w, r, err, "Pricing plan not found")
			return
		}
		writeJSON(w, http.StatusOK, plan)
		return
	}

	plans, err := c.store.ListPricingPlans(ctx)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, plans)
}
