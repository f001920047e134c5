package webclient

import "net/http"

const (
	adminTokenCookie = "admin_token"
	userTokenCookie  = "user_token"
)

// cookieTokens backs the gateway's TokenStore with request cookies, so
// each browser session carries its own credentials. Writes go straight to
// the response; reads come from the request.
type cookieTokens struct {
	r *http.Request
	w http.ResponseWriter
}

func newCookieTokens(w http.ResponseWriter, r *http.Request) *cookieTokens {
	return &cookieTokens{r: r, w: w}
}

func (c *cookieTokens) read(name string) string {
	ck, err := c.r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}

func (c *cookieTokens) write(name, value string, maxAge int) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *cookieTokens) AdminToken() string { return c.read(adminTokenCookie) }
func (c *cookieTokens) UserToken() string  { return c.read(userTokenCookie) }

func (c *cookieTokens) SetAdminToken(token string) {
	c.write(adminTokenCookie, token, 0)
}

func (c *cookieTokens) SetUserToken(token string) {
	c.write(userTokenCookie, token, 0)
}

func (c *cookieTokens) Clear() {
	c.write(adminTokenCookie, "", -1)
	c.write(userTokenCookie, "", -1)
}
