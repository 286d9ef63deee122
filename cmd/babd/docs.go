package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           babd API
// @version         1.0
// @description     HTTP API for local translation model lifecycle and dispatch.
//
// @contact.name   babd maintainers
// @contact.url    https://github.com/your-org/babd
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
