package server

// Server объединяет HTTP-серверы отдельных сущностей. Сейчас это только
// ResultsServer.
type Server struct {
	ResultsServer
}

func NewServer(
	resultsServer ResultsServer,
) Server {
	return Server{
		ResultsServer: resultsServer,
	}
}
