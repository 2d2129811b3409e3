package integration

import "net/http"

// TestLoginFlow exchanges seeded credentials for a token and uses it on a
// protected route
func (s *apiSuite) TestLoginFlow() {
	w, response := s.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice",
		"password": "alice-pass",
	})
	s.Equal(http.StatusOK, w.Code)

	token, ok := s.data(response)["token"].(string)
	s.Require().True(ok)
	s.NotEmpty(token)

	w, response = s.do(http.MethodGet, "/auth/personal", "Bearer "+token, nil)
	s.Equal(http.StatusOK, w.Code)

	profile := s.data(response)
	s.Equal("alice", profile["username"])
	s.Equal("12 Main St", profile["address"])
}

func (s *apiSuite) TestLoginFlow_BadCredentials() {
	w, response := s.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice",
		"password": "not-her-password",
	})
	s.Equal(http.StatusUnauthorized, w.Code)

	errorData := response["error"].(map[string]interface{})
	s.Equal("INVALID_CREDENTIALS", errorData["code"])
}

func (s *apiSuite) TestProtectedRoutesRejectAnonymous() {
	for _, path := range []string{"/auth/personal", "/orders", "/manage/orders"} {
		w, _ := s.do(http.MethodGet, path, "", nil)
		s.Equal(http.StatusUnauthorized, w.Code, path)
	}
}

func (s *apiSuite) TestPropertyCatalogIsPublic() {
	w, response := s.do(http.MethodGet, "/orders/properties", "", nil)
	s.Equal(http.StatusOK, w.Code)

	data := s.data(response)
	s.Len(data["colors"], 2)
	s.Len(data["sizes"], 1)
	s.Len(data["forms"], 1)
}
