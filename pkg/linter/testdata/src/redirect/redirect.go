// Пакет для теста линтера открытых редиректов.
package redirect

import "net/http"

func unsafeRedirect(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	http.Redirect(w, r, target, http.StatusFound) // want "open redirect"
}

func unsafeLocation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Location", r.FormValue("return_to")) // want "open redirect"
	w.WriteHeader(http.StatusFound)
}

func nextOf(r *http.Request) string {
	return r.URL.Query().Get("next")
}

func unsafeHelper(w http.ResponseWriter, r *http.Request) {
	var next = nextOf(r)
	w.Header().Add("location", next) // want "open redirect"
	w.WriteHeader(http.StatusSeeOther)
}

type allowList struct{}

func (allowList) Resolve(target string) string {
	if target == "/home" || target == "/profile" {
		return target
	}
	return "/home"
}

func safeResolved(w http.ResponseWriter, r *http.Request) {
	target := allowList{}.Resolve(r.URL.Query().Get("url"))
	http.Redirect(w, r, target, http.StatusFound)
}

func safeConstant(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Location", "/dashboard")
	w.WriteHeader(http.StatusFound)
}

func safeReassigned(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	target = allowList{}.Resolve(target)
	http.Redirect(w, r, target, http.StatusFound)
}

func otherHeader(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Original-Path", r.URL.Path)
}
