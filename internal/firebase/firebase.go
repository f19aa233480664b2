package firebase

import (
	"context"
	"fmt"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/config"
)

// App holds the initialized Firebase App object. It is nil until Initialize
// has been called, so packages that only need Firebase at serve time can be
// imported (and tested) without credentials present.
var App *firebaseSDK.App
var Context context.Context

// Initialize creates the Firebase App from the configured service account
// credentials. Must be called once before any Firestore, Auth, or Storage
// client is created.
func Initialize() error {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.Config.FirebaseCredentialsFile)
	app, err := firebaseSDK.NewApp(ctx, &firebaseSDK.Config{
		StorageBucket: config.Config.StorageBucket,
	}, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	App = app
	Context = ctx
	return nil
}
