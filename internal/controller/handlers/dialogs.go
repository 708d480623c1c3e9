package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/api"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/state"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// HandleTextMessage dispatches free text to the active dialog step.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	currentState := h.stateManager.GetState(chatID)

	switch currentState {
	case state.StateLoginEmail:
		h.handleLoginEmailStep(ctx, b, update)
	case state.StateLoginPassword:
		h.handleLoginPasswordStep(ctx, b, update)
	case state.StateSignupName:
		h.handleSignupNameStep(ctx, b, update)
	case state.StateSignupEmail:
		h.handleSignupEmailStep(ctx, b, update)
	case state.StateSignupPassword:
		h.handleSignupPasswordStep(ctx, b, update)
	case state.StatePropertyName:
		h.handlePropertyNameStep(ctx, b, update)
	case state.StatePropertyLocation:
		h.handlePropertyLocationStep(ctx, b, update)
	case state.StatePropertyPrice:
		h.handlePropertyPriceStep(ctx, b, update)
	case state.StatePropertyAvailability:
		h.sendMessage(ctx, b, chatID, "Use the buttons above to pick availability, or /cancel.")
	case state.StatePropertyImageURL:
		h.handlePropertyImageURLStep(ctx, b, update)
	case state.StateBookingDate:
		h.handleBookingDateStep(ctx, b, update)
	case state.StateBookingTime:
		h.handleBookingTimeStep(ctx, b, update)
	case state.StateBookingConfirm:
		h.sendMessage(ctx, b, chatID, "Use the Confirm or Cancel button above, or /cancel.")
	case state.StateSearchQuery:
		h.handleSearchQueryStep(ctx, b, update)
	default:
		h.sendMessage(ctx, b, chatID, "I didn't get that. Try /help for the list of commands.")
	}
}

// ===== Login =====

func (h *Handlers) handleLoginEmailStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	email := strings.TrimSpace(update.Message.Text)

	if !emailPattern.MatchString(email) {
		h.sendError(ctx, b, chatID, "❌ That doesn't look like an email. Try again:")
		return
	}

	h.stateManager.SetData(chatID, "login_email", email)
	h.stateManager.SetState(chatID, state.StateLoginPassword)
	h.sendMessage(ctx, b, chatID, "Step 2 of 2: enter your password.")
}

func (h *Handlers) handleLoginPasswordStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	password := update.Message.Text

	rawEmail, ok := h.stateManager.GetData(chatID, "login_email")
	if !ok {
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, "❌ Login dialog expired. Start again with /login.")
		return
	}
	email, _ := rawEmail.(string)

	h.stateManager.ClearState(chatID)

	user, err := h.auth.Login(ctx, chatID, email, password)
	if err != nil {
		h.logger.Warn("Login failed", zap.Int64("chat_id", chatID), zap.Error(err))
		switch api.KindOf(err) {
		case api.KindAuth, api.KindValidation, api.KindNotFound:
			h.sendError(ctx, b, chatID, "❌ Wrong email or password. Try /login again.")
		default:
			h.notifyError(ctx, b, chatID, err)
		}
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Logged in as %s!", user.Name))
	h.sendDashboard(ctx, b, chatID)
}

// ===== Signup =====

func (h *Handlers) handleSignupNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	name := strings.TrimSpace(update.Message.Text)

	if len(name) < 2 {
		h.sendError(ctx, b, chatID, "❌ Name is too short. Try again:")
		return
	}

	h.stateManager.SetData(chatID, "signup_name", name)
	h.stateManager.SetState(chatID, state.StateSignupEmail)
	h.sendMessage(ctx, b, chatID, "Step 2 of 3: enter your email.")
}

func (h *Handlers) handleSignupEmailStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	email := strings.TrimSpace(update.Message.Text)

	if !emailPattern.MatchString(email) {
		h.sendError(ctx, b, chatID, "❌ That doesn't look like an email. Try again:")
		return
	}

	h.stateManager.SetData(chatID, "signup_email", email)
	h.stateManager.SetState(chatID, state.StateSignupPassword)
	h.sendMessage(ctx, b, chatID, fmt.Sprintf("Step 3 of 3: choose a password (at least %d characters).", PasswordMinLength))
}

func (h *Handlers) handleSignupPasswordStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	password := update.Message.Text

	if len(password) < PasswordMinLength {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Password must be at least %d characters. Try again:", PasswordMinLength))
		return
	}

	rawName, okN := h.stateManager.GetData(chatID, "signup_name")
	rawEmail, okE := h.stateManager.GetData(chatID, "signup_email")
	if !okN || !okE {
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, "❌ Signup dialog expired. Start again with /signup.")
		return
	}
	name, _ := rawName.(string)
	email, _ := rawEmail.(string)

	h.stateManager.ClearState(chatID)

	user, err := h.auth.Signup(ctx, chatID, name, email, password)
	if err != nil {
		h.logger.Warn("Signup failed", zap.Int64("chat_id", chatID), zap.Error(err))
		switch api.KindOf(err) {
		case api.KindValidation:
			h.sendError(ctx, b, chatID, "❌ Signup rejected. The email may already be registered. Try /signup again.")
		default:
			h.notifyError(ctx, b, chatID, err)
		}
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("🎉 Account created. Welcome, %s!", user.FirstName()))
	h.sendDashboard(ctx, b, chatID)
}

// ===== Property create/edit =====

func (h *Handlers) handlePropertyNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	name := strings.TrimSpace(update.Message.Text)

	if len(name) < PropertyNameMinLength {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Name is too short, minimum %d characters. Try again:", PropertyNameMinLength))
		return
	}
	if len(name) > PropertyNameMaxLength {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Name is too long, maximum %d characters. Try again:", PropertyNameMaxLength))
		return
	}

	h.stateManager.SetData(chatID, "draft_name", name)
	h.stateManager.SetState(chatID, state.StatePropertyLocation)
	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Name: %s\n\nStep 2 of 5: enter the location (area, city).", name))
}

func (h *Handlers) handlePropertyLocationStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	location := strings.TrimSpace(update.Message.Text)

	if len(location) < PropertyLocationMinLength {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Location is too short, minimum %d characters. Try again:", PropertyLocationMinLength))
		return
	}
	if len(location) > PropertyLocationMaxLength {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Location is too long, maximum %d characters. Try again:", PropertyLocationMaxLength))
		return
	}

	h.stateManager.SetData(chatID, "draft_location", location)
	h.stateManager.SetState(chatID, state.StatePropertyPrice)
	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Location: %s\n\nStep 3 of 5: enter the monthly rent in rupees (for example: 8500).", location))
}

func (h *Handlers) handlePropertyPriceStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	priceStr := strings.TrimSpace(update.Message.Text)

	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil || price <= 0 {
		h.sendError(ctx, b, chatID, "❌ Enter the rent as a whole number, for example 8500. Try again:")
		return
	}
	if price > PropertyMaxPrice {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Rent cannot exceed ₹%d. Try again:", int64(PropertyMaxPrice)))
		return
	}

	h.stateManager.SetData(chatID, "draft_price", price)
	h.stateManager.SetState(chatID, state.StatePropertyAvailability)

	h.sendScreen(ctx, b, chatID,
		fmt.Sprintf("✅ Rent: ₹%d / month\n\nStep 4 of 5: is the property available right now?", price),
		&models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{
					{Text: "✅ Available", CallbackData: common.SetAvailability + "yes"},
					{Text: "🚫 Not available", CallbackData: common.SetAvailability + "no"},
				},
			},
		},
	)
}

func (h *Handlers) handlePropertyImageURLStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	imageURL := strings.TrimSpace(update.Message.Text)

	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		h.sendError(ctx, b, chatID, "❌ Enter a full image URL starting with http:// or https://. Try again:")
		return
	}

	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		h.stateManager.ClearState(chatID)
		return
	}

	data := h.stateManager.GetAllData(chatID)
	h.stateManager.ClearState(chatID)

	name, _ := data["draft_name"].(string)
	location, _ := data["draft_location"].(string)
	price, _ := data["draft_price"].(int64)
	availability, _ := data["draft_availability"].(bool)
	mode, _ := data["property_mode"].(string)
	propertyID, _ := data["property_id"].(string)

	draft := model.PropertyDraft{
		Name:         name,
		ImageURL:     imageURL,
		Price:        price,
		Location:     location,
		Availability: availability,
	}

	if mode == "edit" && propertyID != "" {
		if err := h.properties.Update(ctx, sess.User.ID, propertyID, draft); err != nil {
			h.logger.Error("Failed to update property", zap.String("property_id", propertyID), zap.Error(err))
			h.notifyError(ctx, b, chatID, err)
			return
		}
		h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ %s updated!", draft.Name))
	} else {
		if _, err := h.properties.Create(ctx, sess.User.ID, draft); err != nil {
			h.logger.Error("Failed to create property", zap.Error(err))
			h.notifyError(ctx, b, chatID, err)
			return
		}
		h.sendMessage(ctx, b, chatID, fmt.Sprintf("🎉 %s is now listed!", draft.Name))
	}

	text, keyboard, err := common.BuildMyPropertiesScreen(ctx, h.deps, sess)
	if err != nil {
		h.logger.Error("Failed to build properties screen", zap.Error(err))
		return
	}
	h.sendScreen(ctx, b, chatID, text, keyboard)
}

// ===== Booking request =====

func (h *Handlers) handleBookingDateStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	dateStr := strings.TrimSpace(update.Message.Text)

	if _, err := time.Parse(BookingDateLayout, dateStr); err != nil {
		h.sendError(ctx, b, chatID, "❌ Enter the date as YYYY-MM-DD, for example 2026-09-15. Try again:")
		return
	}

	h.stateManager.SetData(chatID, "booking_date", dateStr)
	h.stateManager.SetState(chatID, state.StateBookingTime)
	h.sendMessage(ctx, b, chatID, "Step 2 of 2: enter the visit time (HH:MM, 24h).")
}

func (h *Handlers) handleBookingTimeStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	timeStr := strings.TrimSpace(update.Message.Text)

	if _, err := time.Parse(BookingTimeLayout, timeStr); err != nil {
		h.sendError(ctx, b, chatID, "❌ Enter the time as HH:MM, for example 14:30. Try again:")
		return
	}

	rawProperty, ok := h.stateManager.GetData(chatID, "booking_property")
	property, _ := rawProperty.(*model.Property)
	if !ok || property == nil {
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, "❌ Booking dialog expired. Start again from /listings.")
		return
	}

	rawDate, _ := h.stateManager.GetData(chatID, "booking_date")
	date, _ := rawDate.(string)

	h.stateManager.SetData(chatID, "booking_time", timeStr)
	h.stateManager.SetState(chatID, state.StateBookingConfirm)

	h.sendScreen(ctx, b, chatID,
		fmt.Sprintf(
			"📋 Booking summary\n\n"+
				"🏠 %s — %s\n"+
				"💰 ₹%d / month\n"+
				"📅 %s at %s\n\n"+
				"Send this request to the landlord?",
			property.Name, property.Location, property.Price, date, timeStr,
		),
		&models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{
					{Text: "✅ Confirm", CallbackData: common.ConfirmBooking},
					{Text: "❌ Cancel", CallbackData: common.CancelDialog},
				},
			},
		},
	)
}

// ===== Listings search =====

func (h *Handlers) handleSearchQueryStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	query := strings.TrimSpace(update.Message.Text)

	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		h.stateManager.ClearState(chatID)
		return
	}

	h.stateManager.SetState(chatID, state.StateNone)

	text, keyboard := common.BuildListingsScreen(ctx, h.deps, sess, query)
	h.sendScreen(ctx, b, chatID, text, keyboard)
}

func (h *Handlers) sendDashboard(ctx context.Context, b *bot.Bot, chatID int64) {
	sess, err := h.auth.Current(ctx, chatID)
	if err != nil || sess == nil {
		return
	}

	text, keyboard, err := common.BuildDashboardScreen(ctx, h.deps, sess)
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		return
	}
	h.sendScreen(ctx, b, chatID, text, keyboard)
}
