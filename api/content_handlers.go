package api

import (
	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/validators"
)

func newServiceHandler(store resourceStore[models.Service]) resourceHandler[models.Service] {
	return newResourceHandler("service", "serviceHandler", store, validators.ParseService)
}

func newTestimonialHandler(store resourceStore[models.Testimonial]) resourceHandler[models.Testimonial] {
	return newResourceHandler("testimonial", "testimonialHandler", store, validators.ParseTestimonial)
}

func newTeamMemberHandler(store resourceStore[models.TeamMember]) resourceHandler[models.TeamMember] {
	return newResourceHandler("team member", "teamMemberHandler", store, validators.ParseTeamMember)
}
