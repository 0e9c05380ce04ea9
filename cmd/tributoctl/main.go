// Command tributoctl runs settlement jobs and operator tasks outside the HTTP server.
//
//	tributoctl settle --tenant <uuid> [--company <uuid>] [--period YYYY-MM|all]
//	tributoctl token --tenant <uuid> --user <uuid> --email ops@example.cl --role viewer
package main

func main() {
	Execute()
}
