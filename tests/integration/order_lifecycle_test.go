package integration

import (
	"net/http"

	"github.com/craftline/orders-api/models"
)

func (s *apiSuite) createOrder(colorID uint) string {
	w, response := s.do(http.MethodPost, "/orders", s.clientToken(), map[string]interface{}{
		"color_id": colorID,
		"size_id":  s.size.ID,
		"form_id":  s.form.ID,
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	code, ok := s.data(response)["code"].(string)
	s.Require().True(ok)
	return code
}

func (s *apiSuite) orderState(code string) (string, string) {
	var order models.Order
	s.Require().NoError(s.db.First(&order, "code = ?", code).Error)
	return order.Status, order.Process
}

// TestStandardOrderLifecycle drives one standard-set order through the
// whole happy path: creation, delivery, completion, return and the money
// resolution.
func (s *apiSuite) TestStandardOrderLifecycle() {
	assembly := s.managerToken(models.ScopeManageInAssemblyOnly)
	delivery := s.managerToken(models.ScopeManageInDeliveryOnly)

	code := s.createOrder(s.color.ID)

	// Matching the registered standard set skips the pending stage
	status, process := s.orderState(code)
	s.Equal(models.StatusInProcess, status)
	s.Equal(models.ProcessInAssembly, process)

	w, _ := s.do(http.MethodPost, "/manage/orders/advance", assembly,
		map[string]interface{}{"codes": []string{code}})
	s.Equal(http.StatusOK, w.Code)
	_, process = s.orderState(code)
	s.Equal(models.ProcessInDelivery, process)

	w, _ = s.do(http.MethodPost, "/manage/orders/complete", delivery,
		map[string]interface{}{"codes": []string{code}})
	s.Equal(http.StatusOK, w.Code)
	status, process = s.orderState(code)
	s.Equal(models.StatusCompleted, status)
	s.Equal(models.ProcessDelivered, process)

	w, response := s.do(http.MethodPost, "/orders/"+code+"/return", s.clientToken(), nil)
	s.Equal(http.StatusCreated, w.Code)
	status, _ = s.orderState(code)
	s.Equal(models.StatusReturned, status)

	returnID := s.data(response)["id"].(float64)
	w, response = s.do(http.MethodPost,
		"/manage/returns/"+itoa(uint(returnID))+"/solution", delivery,
		map[string]string{"solution": models.SolutionMoney})
	s.Equal(http.StatusOK, w.Code)
	s.Equal(models.SolutionMoney, s.data(response)["solution"])
}

// TestCustomOrderLifecycle covers the pending stage a non-standard order
// goes through before assembly
func (s *apiSuite) TestCustomOrderLifecycle() {
	assembly := s.managerToken(models.ScopeManageInAssemblyOnly)

	code := s.createOrder(s.offColor.ID)

	_, process := s.orderState(code)
	s.Equal(models.ProcessPending, process)

	w, _ := s.do(http.MethodPost, "/manage/orders/accept", assembly,
		map[string]interface{}{"codes": []string{code}})
	s.Equal(http.StatusOK, w.Code)
	_, process = s.orderState(code)
	s.Equal(models.ProcessInAssembly, process)
}

// TestReplacementOrderFlow resolves a return with a new order and checks
// the replacement belongs to the same client
func (s *apiSuite) TestReplacementOrderFlow() {
	delivery := s.managerToken(models.ScopeManageInDeliveryOnly)

	code := s.createOrder(s.color.ID)
	s.Require().NoError(s.db.Model(&models.Order{}).Where("code = ?", code).
		Updates(map[string]interface{}{
			"status":  models.StatusInProcess,
			"process": models.ProcessDelivered,
		}).Error)

	w, response := s.do(http.MethodPost, "/orders/"+code+"/return", s.clientToken(), nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	returnID := s.data(response)["id"].(float64)

	w, response = s.do(http.MethodPost,
		"/manage/returns/"+itoa(uint(returnID))+"/solution", delivery,
		map[string]string{"solution": models.SolutionNewOrder})
	s.Require().Equal(http.StatusOK, w.Code)

	newCode, ok := s.data(response)["new_order_code"].(string)
	s.Require().True(ok)
	s.NotEqual(code, newCode)

	// The replacement is visible to the client alongside the returned one
	w, response = s.do(http.MethodGet, "/orders/"+newCode, s.clientToken(), nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(models.StatusInProcess, s.data(response)["status"])
}

// TestScopeIsolation verifies an assembly-stage manager cannot run
// delivery-stage actions and the other way round
func (s *apiSuite) TestScopeIsolation() {
	assembly := s.managerToken(models.ScopeManageInAssemblyOnly)
	delivery := s.managerToken(models.ScopeManageInDeliveryOnly)

	code := s.createOrder(s.color.ID)
	payload := map[string]interface{}{"codes": []string{code}}

	w, _ := s.do(http.MethodPost, "/manage/orders/complete", assembly, payload)
	s.Equal(http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodPost, "/manage/orders/accept", delivery, payload)
	s.Equal(http.StatusForbidden, w.Code)

	// Both may cancel
	w, _ = s.do(http.MethodPost, "/manage/orders/cancel", delivery, payload)
	s.Equal(http.StatusOK, w.Code)
	status, _ := s.orderState(code)
	s.Equal(models.StatusCancelled, status)
}
