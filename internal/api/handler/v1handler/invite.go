package v1handler

import (
	"net/http"

	"naamkaran/pkg/domain"
	"naamkaran/pkg/logger"
	"naamkaran/pkg/mailer"
	"naamkaran/pkg/metrics"

	"go.uber.org/zap"
)

// sendInviteRequest is the wire format dispatchers post to the relay. Image
// is the rendered card, either a full data URI or bare base64.
type sendInviteRequest struct {
	Email     string `json:"email"`
	GuestName string `json:"guestName"`
	Image     string `json:"image"`
}

// SendInvite is the mail relay endpoint. It decodes the attached card and
// emails it to the guest, answering with the delivery outcome the dispatcher
// shows verbatim.
func (h *Handler) SendInvite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondJSON(w, http.StatusMethodNotAllowed, errorMessage{Message: "Method not allowed"})

		return
	}

	var req sendInviteRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.DeliveryOutcome{
			Success: false,
			Message: "Missing email or image data.",
		})

		return
	}
	if req.Email == "" || req.Image == "" {
		respondJSON(w, http.StatusBadRequest, domain.DeliveryOutcome{
			Success: false,
			Message: "Missing email or image data.",
		})

		return
	}

	attachment, err := domain.DecodeAttachment(req.Image)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.DeliveryOutcome{
			Success: false,
			Message: "Invalid image data.",
		})

		return
	}

	logger.Info(r.Context(), "sending invitation email",
		zap.String("email", req.Email),
		zap.String("guest", req.GuestName))

	err = h.deps.Courier.SendInvitation(r.Context(), mailer.Invitation{
		To:         req.Email,
		GuestName:  req.GuestName,
		Attachment: attachment,
	})
	if err != nil {
		logger.Error(r.Context(), "email sending failed", zap.Error(err))
		metrics.InvitationsRelayed.WithLabelValues("failure").Inc()
		respondJSON(w, http.StatusInternalServerError, domain.DeliveryOutcome{
			Success: false,
			Message: "Failed to send email. Please check server logs.",
		})

		return
	}

	metrics.InvitationsRelayed.WithLabelValues("success").Inc()
	respondJSON(w, http.StatusOK, domain.DeliveryOutcome{
		Success: true,
		Message: "Invitation sent successfully!",
	})
}
