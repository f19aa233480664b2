package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/announcement"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/blob"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/config"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/content"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/course"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/firebase"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/quiz"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/user"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/video"
)

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Logger, // Log API Request Calls
	)

	router.Get("/", healthHandler)

	router.Route("/v1", func(r chi.Router) {
		r.Mount("/auth", auth.Routes())
		r.Mount("/users", user.Routes())
		r.Mount("/courses", course.Routes())
		r.Mount("/announcements", announcement.Routes())
		r.Mount("/content", content.Routes())
		r.Mount("/quizzes", quiz.Routes())
		r.Mount("/videos", video.Routes())
	})

	return router
}

// GET: /
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(200)
	w.Write([]byte("The LMS admin API is up and running! 🎉"))
}

func Start() {
	if config.Config == nil {
		log.Panic("❌ Missing or invalid configuration!")
	}

	if err := firebase.Initialize(); err != nil {
		log.Panicf("❌ %v\n", err)
	}

	firestoreClient, err := firebase.App.Firestore(firebase.Context)
	if err != nil {
		log.Panicf("❌ Firestore client error: %v\n", err)
	}
	client := store.NewFirestoreClient(firestoreClient)

	uploader, err := blob.NewFirebaseUploader()
	if err != nil {
		log.Panicf("❌ %v\n", err)
	}

	if err := auth.Init(client); err != nil {
		log.Panicf("❌ %v\n", err)
	}
	user.Init(client)
	course.Init(client)
	course.InitUploader(uploader)
	announcement.Init(client)
	content.Init(client)
	quiz.Init(client)
	video.Init(client)
	video.InitUploader(uploader)
	log.Println("✅ Connected to Firestore and the storage bucket.")

	router := Routes()
	c := cors.New(cors.Options{
		AllowedOrigins:   config.Config.AllowedOrigins,
		AllowedHeaders:   []string{"Cookie", "Content-Type"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "PATCH"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)
	log.Printf("Server is listening on port %v\n", config.Config.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", config.Config.Port), handler))
}
