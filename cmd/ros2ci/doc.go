/*
Command ros2ci builds and tests a ROS 2 package from a GitHub Actions workflow.

The primary goal of ros2ci is to check a ROS 2 package the way its users build
it: from a fresh colcon workspace, with the dependencies declared in its
package manifests, for the repository and branch of the change being tested.
*/
package main
