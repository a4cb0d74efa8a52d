// Package middlewarectx содержит HTTP middleware сервисов мессенджера:
// CORS-заголовки для браузерных клиентов и метрики Prometheus.
//
// Фронтенд мессенджера ходит на сервисы с другого origin, поэтому
// каждый ответ, включая ошибки, несёт разрешающие CORS-заголовки,
// а preflight-запросы OPTIONS закрываются без обращения к хранилищу.
package middlewarectx

import "net/http"

// CORS возвращает middleware, которое выставляет разрешающие CORS-заголовки
// на каждый ответ и отвечает на preflight-запросы OPTIONS пустым телом.
//
// allowMethods — значение Access-Control-Allow-Methods, у каждого сервиса своё.
func CORS(allowMethods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
