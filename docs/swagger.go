// Package docs LBS Gateway API.
//
// Шлюз к веб-сервису геолокации (apis.map.qq.com). Подписывает запросы ключом,
// кеширует идемпотентные ответы в Redis и отдаёт их в едином JSON формате.
//
// Основные возможности:
// - Поиск мест, подсказки и детали места
// - Прямое, обратное и "умное" геокодирование, анализ адресов
// - Маршруты (в том числе для грузовиков) и матрица расстояний
// - Административное деление из локального справочника PostgreSQL
// - Пересчёт координат и местоположение по IP или данным сети
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
