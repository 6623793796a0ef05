// Package router runs the host's screens on top of a navigation controller.
//
// Each view is registered with a ScreenFunc. Run renders the current view's
// screen, takes the Action it returns and applies it through the controller,
// then renders whatever view is current afterwards. All routing decisions
// live in the controller; the router only connects screens to it.
//
// # Basic Usage
//
//	nav := navigation.New()
//	r := router.New(nav)
//
//	r.Register(views.Home, func(ctx context.Context, f router.Frame) (router.Action, error) {
//	    switch showHome(ctx) {
//	    case choiceProjects:
//	        return router.Navigate(views.Projects, nil), nil
//	    default:
//	        return router.Exit(), nil
//	    }
//	})
//
//	r.Register(views.Projects, func(ctx context.Context, f router.Frame) (router.Action, error) {
//	    project, ok := pickProject(ctx)
//	    if !ok {
//	        return router.Back(), nil
//	    }
//	    return router.Navigate(views.ClaudeSession, navigation.Params{"project": project}), nil
//	})
//
//	err := r.Run(ctx)
//
// # Vetoed Actions
//
// When the controller's interceptor vetoes an action the same screen is shown
// again. Frame.LastOutcome tells the screen what happened to its previous
// action, so it can explain why nothing moved.
package router
